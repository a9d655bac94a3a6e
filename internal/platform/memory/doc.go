// Package memory provides in-memory implementations for the data storage
// interfaces defined in the internal/store package. The collection lives in
// process memory only: it starts empty and is destroyed on restart.
package memory
