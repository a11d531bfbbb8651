// Package core contains the channel stream engine the Result operators are
// built on: element-wise transform and filter, switch-to-latest and merge
// flattening, channel sources and sinks, and stage configuration via context.
// Apart from a couple of Result sources it is generic over plain values;
// packages like lite layer the Result semantics on top.
package core
