package domain

import "context"

// DeliveryProvider produces the payload handed to the buyer: license keys,
// account credentials, download links. Auto-delivery listings fetch it from
// seller stock; manual listings skip the provider and the seller submits the
// payload directly.
type DeliveryProvider interface {
	FetchPayload(ctx context.Context, listingID string) (string, error)
}
