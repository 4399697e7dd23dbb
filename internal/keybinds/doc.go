/*
Package keybinds provides customizable keyboard binding management.

# Overview

Keys are mapped to actions within a context. The TUI looks a key up in
the context of the active screen and falls back to the global context.

# Contexts

  - global: bindings available on every screen (ctrl+c force quit)
  - main: the request list
  - new_request: the new request form

On the form, printable keys that are not bound are typed into the active
field, so binding one there removes it from typing. The validator warns
about this.

# Configuration

User bindings live under the keybinds section of the config file and map
a key to an action. The action "noop" removes a default binding:

	keybinds:
	  main:
	    x: execute
	    s: noop

# Validation

The validator reports unknown actions and screens left without a quit or
confirm key as errors. Rebinding ctrl+c, shadowing a global binding and
capturing a printable key on the form are warnings.
*/
package keybinds
