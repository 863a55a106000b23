// Package paths provides centralized path handling for persist-make.
//
// It covers two concerns:
//
//   - Path accumulation: splitting the requested path into components and
//     producing, for every prefix, the absolute path under the source root
//     and under the target root.
//   - XDG locations for persist-make's own files (user configuration and
//     the log file).
//
// # Path accumulation
//
// The requested path is written as if it were absolute ("/a/b/c.txt"). The
// leading separator is required and stripped; what remains is joined onto
// both roots one component at a time:
//
//	acc, err := paths.NewAccumulator("/src", "/dst", "/a/b/c.txt")
//	if err != nil {
//	    return err
//	}
//	for pair := range acc.Pairs() {
//	    // {1 /src/a /dst/a}, {2 /src/a/b /dst/a/b}, {3 /src/a/b/c.txt /dst/a/b/c.txt}
//	}
//
// No I/O is performed here.
//
// # Environment Variables
//
//   - PERSIST_MAKE_CONFIG_DIR: Override the config directory (default: $XDG_CONFIG_HOME/persist-make)
//   - PERSIST_MAKE_STATE_DIR: Override the state directory (default: $XDG_STATE_HOME/persist-make)
package paths
