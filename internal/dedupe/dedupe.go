package dedupe

// Package dedupe provides the shared singleflight group used to serialize
// turn resolution per battle: only one resolution job runs for a given join
// code while other callers wait for its result.

import "golang.org/x/sync/singleflight"

// ResolveGroup deduplicates concurrent turn-resolution requests keyed by the
// battle's join code.
var ResolveGroup singleflight.Group
