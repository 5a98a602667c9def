package visitor

// Visitor is an interface that Visits over pairs of (key, element).
// The Visit method calls the provided callback for each pair.
// If the callback returns false, the Visit stops.
type Visitor[K comparable, E any] func(func(key K, element E) bool)
