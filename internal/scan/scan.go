// Package scan discovers listening TCP/UDP sockets by merging two
// independent sources:
//
//  1. the ss command, which reports process identities when it runs
//     with enough privilege, and
//  2. the /proc/net socket tables, which see every socket (including
//     Docker's) but need a /proc walk to attribute them.
//
// Neither source is complete on its own; Merge reconciles them into a
// single deduplicated view keyed by (protocol, port).
package scan

import (
	"log"
	"os"
)

var warnLog = log.New(os.Stderr, "WARNING: ", log.LstdFlags)
