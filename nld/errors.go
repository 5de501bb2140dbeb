package nld

import "errors"

// ErrNoSharedConcepts indicates two word lists have no concept in common,
// so their mean distance is mathematically undefined. Callers must treat
// the pair as "no comparable data", never as distance 0.
var ErrNoSharedConcepts = errors.New("nld: word lists share no concepts")
