// Package listing contains the Property aggregate and its owned Location
// entity, the approval workflow state machine, and the listing enumerations.
// All invariants of a listing live here; adapters and handlers only
// orchestrate.
package listing
