package core

import "github.com/zoobzio/capitan"

// Inner stream lifecycle signals emitted by SwitchMap and MergeMap.
var (
	// InnerSubscribed is emitted when a projected inner stream starts being forwarded.
	InnerSubscribed = capitan.NewSignal(
		"rop.inner.subscribed",
		"Inner stream subscribed",
	)

	// InnerCompleted is emitted when an inner stream closes on its own.
	InnerCompleted = capitan.NewSignal(
		"rop.inner.completed",
		"Inner stream completed",
	)

	// InnerCancelled is emitted when SwitchMap cuts off an inner stream before it closed.
	InnerCancelled = capitan.NewSignal(
		"rop.inner.cancelled",
		"Inner stream cancelled",
	)

	// ElementBypassed is emitted when an outer element is emitted without projection.
	ElementBypassed = capitan.NewSignal(
		"rop.element.bypassed",
		"Element passed through without projection",
	)
)

var (
	// KeyOperator names the flattening strategy, "switch" or "merge".
	KeyOperator = capitan.NewStringKey("operator")

	// KeyActive is the number of inner streams active after the event.
	KeyActive = capitan.NewIntKey("active")
)

const (
	switchOperator = "switch"
	mergeOperator  = "merge"
)
