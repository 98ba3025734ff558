// Copyright (C) 2023 Gobalsky Labs Limited
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package metrics

import (
	"fmt"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "credit"

var (
	// BatchesExecuted counts action batches that committed.
	BatchesExecuted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "batches_executed_total",
		Help:      "Number of action batches executed successfully",
	})
	// BatchesFailed counts action batches that rolled back.
	BatchesFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "batches_failed_total",
		Help:      "Number of action batches rolled back",
	})
	// CallbacksExecuted counts deferred callbacks run by the pipeline,
	// terminal health assertions included.
	CallbacksExecuted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "callbacks_executed_total",
		Help:      "Number of deferred callbacks dispatched",
	})
	// LiquidationsExecuted counts committed liquidations.
	LiquidationsExecuted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "liquidations_executed_total",
		Help:      "Number of liquidations executed",
	})
)

// Start exposes the prometheus handler when metrics are enabled.
func Start(conf Config) {
	if !conf.Enabled {
		return
	}
	http.Handle(conf.Path, promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", conf.Port), nil))
	}()
}
