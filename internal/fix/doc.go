// Package fix holds the protocol value types shared by the factory and the
// version catalogs: messages, repeating groups, field maps, well-known tags,
// and BeginString handling. It knows nothing about wire encoding.
package fix
