// Package document defines the editable CV model and the session that owns
// it. The model is deliberately looser than the serialized output: entries
// hold ordered key/value fields where schema-declared and user-added custom
// fields live side by side, internal keys (the underscore-prefixed id and
// kind tag) travel with each entry, and empty values are kept so editors can
// show fields before they are filled in. Serialization tightens all of this
// up; see the rendercv package. Mutations go through Session methods so the
// revision counter can tell consumers when derived views such as YAML
// previews are stale. The implementation lives in internal/document and is
// re-exported here.
package document
