// Package fluentmapper compiles declarative property-mapping specifications
// into reusable, type-checked transformation functions.
//
// A Spec describes how properties of a source type correspond to properties
// of a target type: descriptor lists (discovered from the two types' public
// members by default, or supplied explicitly), optional custom mappings, and
// an optional constructor. Create compiles the specification once - matching
// properties by name, validating type identity per pair, synthesizing one
// setter per matched pair and folding setters plus custom mappings into a
// single composed transformation - and returns an immutable Mapper.
//
//	spec := fluentmapper.NewSpec[Target, Source]()
//	mapper, err := spec.Create()
//	if err != nil {
//		// fix the specification; compilation errors are never partial
//	}
//	target := mapper.Map(source)
//
// A compiled Mapper holds no mutable state and is safe for unlimited
// concurrent use. All validation errors are raised synchronously by Create;
// Map never fails due to mapping logic itself.
package fluentmapper
