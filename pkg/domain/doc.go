/*
Package domain contains the core domain models for the system power controller.

It defines the power-state enums, element identities, the static topology, and
the composite-state encoding used by deep wakeup requests. This package is kept
pure and free of external dependencies like I/O or persistence, following
Hexagonal Architecture principles.

# Key Entities

  - PowerState: The canonical three-valued system state (Off, On, Sleep0).
  - RailState: The physical on/off state of a single power rail.
  - ElementID: Identity of a framework element (module + element name).
  - Topology: The static wiring supplied at construction time.
  - CompositeState: Packed multi-level target state for hierarchy-wide requests.
*/
package domain
