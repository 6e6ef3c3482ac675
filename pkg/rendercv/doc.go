// Package rendercv converts between the editable document model and the
// strict YAML document the downstream renderer consumes. Encoding tightens
// the loose session shape: internal underscore-prefixed keys, empty strings,
// and empty lists are stripped, optional identity fields are dropped when
// blank, design and locale are reduced to their configured values (never
// less than a theme and a language), and an empty settings block is omitted
// entirely. Output is deterministic: mapping keys follow model order,
// multiline and long values are emitted as literal block scalars so the
// emitter never hard-wraps them, and encoding the same document twice yields
// identical bytes. Decoding walks the YAML node tree so field and section
// order survive a round trip.
package rendercv
