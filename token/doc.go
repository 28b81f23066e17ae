/*
Package token implements longest-match tokenization over a fixed,
ordered array of base parsers. A Set consults a position-indexed
Robin-Hood cache before attempting a match and populates it on first
touch at a given offset; the cache only affects latency, never which
parser wins at a position.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package token
