package platform

// Package platform contains OS/platform integration glue: filesystem helpers,
// clipboard URI-list parsing, MIME sniffing and image header probing.
