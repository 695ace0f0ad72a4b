// Package dictionary is the table-driven version catalog. It builds a
// catalog.MessageFactory from a module manifest: one layout per message
// type, with every repeating group (nested ones included) addressable by its
// counter tag.
//
// Importing the package registers a provider under the entry point of every
// known version, so any catalog.<BeginString>.yaml on the module search path
// can be loaded.
package dictionary
