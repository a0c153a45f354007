package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// StorefrontMetrics holds every collector the service exports.
type StorefrontMetrics struct {
	OrdersCreatedTotal  *prometheus.CounterVec
	OrdersCreatedAmount *prometheus.CounterVec
	OrdersDeletedTotal  prometheus.Counter

	PageViewsTotal *prometheus.CounterVec

	NotificationsTotal *prometheus.CounterVec

	WizardOutcomesTotal *prometheus.CounterVec

	EventPublishErrorsTotal prometheus.Counter
}

func NewStorefrontMetrics(reg prometheus.Registerer) *StorefrontMetrics {
	factory := promauto.With(reg)
	return &StorefrontMetrics{
		OrdersCreatedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_orders_created_total",
				Help: "Orders created through the bot",
			},
			[]string{"storefront"},
		),
		OrdersCreatedAmount: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_orders_created_amount_total",
				Help: "Sum of prices of created orders",
			},
			[]string{"storefront", "currency"},
		),
		OrdersDeletedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "storefront_orders_deleted_total",
				Help: "Orders deleted by operators",
			},
		),
		PageViewsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_page_views_total",
				Help: "Public order page renders by view",
			},
			[]string{"storefront", "view"},
		),
		NotificationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_notifications_total",
				Help: "Operator notifications by result",
			},
			[]string{"result"},
		),
		WizardOutcomesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_wizard_outcomes_total",
				Help: "Handled wizard events by scene and outcome",
			},
			[]string{"scene", "outcome"},
		),
		EventPublishErrorsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "storefront_event_publish_errors_total",
				Help: "Order events that failed to reach the broker",
			},
		),
	}
}
