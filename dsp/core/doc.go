// Package core holds the configuration, numeric helpers and error kinds
// shared by the noise synthesis packages.
package core
