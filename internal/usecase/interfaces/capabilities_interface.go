package interfaces

import "time"

// IIDGenerator produces identifiers so tests can assert deterministic ids.
//
// NewID identifies orders and drafts; NewItemToken produces the short random
// token used for line items within one order.

type IIDGenerator interface {
	NewID() string
	NewItemToken() string
}

// IClock supplies current time for timestamps and the OS number derivation.

type IClock interface {
	Now() time.Time
}
