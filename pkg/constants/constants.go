package constants

// API version
const APIVersion = "0.1.0"

// Default port for the HTTP transport
const DefaultPort = "8080"
