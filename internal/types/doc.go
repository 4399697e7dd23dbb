/*
Package types defines the core data structures used throughout hedwig.

# Overview

The types package provides the plain data shared by the state machine,
the renderer and the CLI:
  - Request: a stored request and its last response text
  - RequestForm: the transient buffers used while composing a request
  - FormField: which form buffer receives keystrokes
  - Screen: which top-level screen is active

# Identity

Requests carry no identifier. A request is identified by its position in
the application's request list, and positions never change because
requests are only ever appended.

# Form Buffers

RequestForm buffers only grow at the end (Append) or shrink from the end
(Erase). Erase removes one rune, never a partial UTF-8 sequence, and is a
no-op on an empty buffer.

# Field Order

Fields are confirmed in declaration order:

	FieldName -> FieldURL -> FieldMethod -> (request created)

Advance reports when the last field has been confirmed.
*/
package types
