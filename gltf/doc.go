// Package gltf loads the parts of a glTF 2.0 model description needed to
// build vertex and index buffers: buffers, buffer views, accessors and the
// first primitive of each mesh.
//
// Only the JSON form (.gltf) is supported. Buffer URIs are resolved relative
// to the document, or decoded in place when they are base64 data URIs.
package gltf
