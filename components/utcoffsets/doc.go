// Package utcoffsets serves the fixed UTC offset catalog as JSON options for
// form inputs, together with search helpers and route registration.
//
// The default handler responds to GET and HEAD requests and supports query and
// limit parameters to filter results. Offsets match on their canonical form
// ("+05:45"), their label ("UTC+05:45") or the compact form without a colon
// ("+0545"). A query such as "?q=+05" arrives as " 05" once decoded; the
// handler reads the leading space as the plus sign it replaced.
package utcoffsets
