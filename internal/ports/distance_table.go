package ports

// Port: a read-only table of known city-pair road distances, used as the
// last resolution tier when the external service cannot place an endpoint.
type DistanceTable interface {
	// Lookup returns the road distance between two places in kilometers.
	// The lookup is direction-independent.
	Lookup(from, to string) (km float64, ok bool)
}
