package types

// ComponentMetadata defines the essential identifying information for components within the system.
// It includes identifiers and descriptive information to help manage and differentiate components dynamically.
type ComponentMetadata struct {
	ID   string // Unique identifier for the component.
	Type string // Type of the component, used to distinguish between different classes of components.
	Name string // Human-readable name for the component.
}

// Transform represents a function that maps an input of type A to an output of type B,
// potentially with an error if the transformation fails. It is the foundational concept
// for value transformation within the library: containers apply transforms to their
// contents without altering their own shape.
type Transform[A, B any] func(A) (B, error)

// Option defines a configuration option function applicable to any component T. This generic approach
// allows for flexible configuration mechanisms across different types of components.
type Option[T any] func(T)
