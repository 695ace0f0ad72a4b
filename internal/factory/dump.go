package factory

import (
	"fmt"
	"io"
	"reflect"
)

// Dump writes one line per registered version:
//
//	<version> => <catalog type> (<module origin>)
func (f *Factory) Dump(w io.Writer) {
	for _, v := range f.Versions() {
		r := f.catalogs[v]
		fmt.Fprintf(w, "%s => %s (%s)\n", v, typeIdentity(r.factory), r.origin)
	}
}

// typeIdentity returns the package-qualified name of v's concrete type.
func typeIdentity(v any) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.PkgPath() == "" || t.Name() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
