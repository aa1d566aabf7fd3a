// doc.go - package documentation.
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package valueset implements the Value Setter: the pass
that turns the raw tokens package bind has already sorted into each
option's private [arg.Vec] into typed values in caller-owned storage.

It knows nothing about flag matching or token extraction; it assumes
[bind.RunDefaults] has already run, so every option's token vector is
final, and walks the registry once, dispatching on [bind.Type] and
[bind.Kind].

Every string and every freshly built slice written along the way is
recorded in a [*Ledger] so a failure partway through a pass can release
everything recorded so far. Values written by an other-type
[bind.OtherCallbacks.Parse] hook are not recorded: the callbacks carry
no release hook.
*/
package valueset
