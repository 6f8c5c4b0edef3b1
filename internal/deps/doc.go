// Package deps reports the availability of external binaries ripper can use.
package deps
