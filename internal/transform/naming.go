package transform

import "github.com/Hawkynt/Hawkynt.github.io-sub005/internal/naming"

// varName converts a local/parameter identifier per spec §4.2.1:
// snake_case on the Python path, camelCase for BASIC locals.
func (t *Transformer) varName(name string) string {
	if t.isBasic() {
		return naming.ToCamelCase(name)
	}
	return naming.EscapePython(naming.ToSnakeCase(name))
}

// funcName converts a free function name: snake_case (Python) or
// PascalCase (BASIC functions/subs, §4.2.1).
func (t *Transformer) funcName(name string) string {
	if t.isBasic() {
		return naming.ToPascalCase(name)
	}
	return naming.EscapePython(naming.ToSnakeCase(name))
}

// className preserves PascalCase on both paths — the Python path
// specifically special-cases class names against the case-converted-
// variable rule (§4.2.1).
func (t *Transformer) className(name string) string {
	return naming.ToPascalCase(name)
}

// fieldName converts an instance field name like varName, with the
// class-local collision check applied by resolveFieldName below.
func (t *Transformer) fieldName(name string) string {
	return t.varName(name)
}

// methodName converts a method name: snake_case (Python) or PascalCase
// (BASIC), matching funcName's rule.
func (t *Transformer) methodName(name string) string {
	return t.funcName(name)
}

// resolveFieldName applies spec §4.2.1's class method/field collision
// rule: if a field's case-converted name collides with a case-converted
// method name in the same class, the field is renamed to
// `_<name>_value`. t.classMethodNames must already be populated with
// every method name in the class before fields are resolved.
func (t *Transformer) resolveFieldName(name string) string {
	converted := t.fieldName(name)
	if t.classMethodNames[converted] {
		return "_" + converted + "_value"
	}
	return converted
}

// backingFieldName is the `_<name>_backing` substitution spec §4.2.1
// describes for a getter/setter whose body self-references the
// property it implements (e.g. `this.OutputSize` inside `outputSize`'s
// own accessor) to avoid infinite recursion once both spellings
// collapse to the same case-converted name.
func backingFieldName(propertyName string) string {
	return "_" + propertyName + "_backing"
}

// syntheticGetterBacking is the plain `_<name>` backing field spec
// §4.2.6 calls for when only a setter exists and Python needs a getter
// stub to satisfy `@<name>.setter`.
func syntheticGetterBacking(propertyName string) string {
	return "_" + propertyName
}
