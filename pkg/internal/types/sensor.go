package types

// Sensor defines the interface for monitoring container mapping operations.
// Sensors expose callback registration for lifecycle events emitted by a mapper:
// map start, per-node transformation, completion, errors, and insulator retries.
// Registered meters receive count updates as events fire.
type Sensor[A any] interface {
	ConnectLogger(...Logger)

	ConnectMeter(...Meter)

	GetComponentMetadata() ComponentMetadata

	GetMeters() []Meter

	SetComponentMetadata(name string, id string)

	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})

	RegisterOnMapStart(...func(ComponentMetadata))

	RegisterOnNodeTransformed(...func(ComponentMetadata, A))

	RegisterOnMapComplete(...func(ComponentMetadata, MapSummary))

	RegisterOnCancel(...func(ComponentMetadata, A))

	RegisterOnError(...func(ComponentMetadata, error, A))

	RegisterOnInsulatorAttempt(...func(ComponentMetadata, A, error, int, int))

	RegisterOnInsulatorSuccess(...func(ComponentMetadata, A, error, int, int))

	RegisterOnInsulatorFailure(...func(ComponentMetadata, A, error, int, int))

	InvokeOnMapStart(ComponentMetadata)

	InvokeOnNodeTransformed(ComponentMetadata, A)

	InvokeOnMapComplete(ComponentMetadata, MapSummary)

	InvokeOnCancel(ComponentMetadata, A)

	InvokeOnError(ComponentMetadata, error, A)

	InvokeOnInsulatorAttempt(ComponentMetadata, A, error, int, int)

	InvokeOnInsulatorSuccess(ComponentMetadata, A, error, int, int)

	InvokeOnInsulatorFailure(ComponentMetadata, A, error, int, int)
}
