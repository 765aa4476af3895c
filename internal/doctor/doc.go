// Package doctor runs health checks on a practice workspace: the topic table,
// the topic folders, the solution template and the README index. Each check
// prints one [ OK ], [WARN], [MISS], [FAIL] or [FIX ] line, in the same format
// as the other diagnostic commands.
package doctor
