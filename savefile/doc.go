// Package savefile reads and rewrites Motorsport Manager save containers.
//
// A container is a 24-byte header followed by two raw LZ4 blocks holding
// JSON-shaped text: a small "info" payload (save metadata) and a large
// "data" payload (game state). [Open] validates the header, decompresses
// both payloads and extracts the editable fields: the save's display name
// and the player team's three drivers. The caller may change driver
// positions through [DriverRef.SetPosition] and then [SaveFile.Write] a new
// container; output is a byte-exact copy of the original texts everywhere
// outside the edited fields.
//
// [Unpack] and [Pack] expose the container codec on its own for inspecting
// or rebuilding the raw payloads.
package savefile
