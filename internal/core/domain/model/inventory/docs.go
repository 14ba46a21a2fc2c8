// Package inventory defines the item catalog and classification types used
// by the booking wizard.
//
// Catalog entries are closed, explicitly-typed records loaded once at
// startup into an immutable id-keyed lookup that also preserves declaration
// order, so per-item warnings are reproducible across runs. Custom items are
// user-declared records outside the catalog; the classifier applies fixed
// default estimates for them.
package inventory
