// Package matrixify encodes reconciliation output as a Matrixify-compatible
// bulk import file for the storefront.
//
// The Row struct defines the 22-column contract: column order, header names
// and the fixed variant values (inventory tracker, policy, fulfillment
// service) the import tool expects. WriteFile renders rows in the order given,
// which mirrors the supplier feed order because downstream duplicate-handle
// resolution can be order sensitive.
package matrixify
