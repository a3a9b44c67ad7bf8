// Package models declares the dataset records.
//
// Field names follow the JSON documents. Optional scalar references are empty
// strings when absent; nullable references that the documents write as null
// are pointers.
package models
