// Package shell mounts the single-page application: it takes the startup
// properties produced by the bootstrap pipeline and renders them into the
// designated mount point of the hosted document.
package shell
