package caller

import (
	"runtime"
	"strings"
)

// Name returns the name of the function or method that called the function
// invoking Name:
//
//	func Bar() {
//		callerName := caller.Name()
//		fmt.Println(callerName) // Bar
//	}
//
// An optional offset walks further up the stack:
//
//	func Foo() {
//		Bar()
//	}
//
//	func Bar() {
//		callerName := caller.Name(1)
//		fmt.Println(callerName) // Foo
//	}
func Name(offsetOpt ...int) string {
	offset := 1
	if len(offsetOpt) > 0 {
		offset += offsetOpt[0]
	}

	pc, _, _, ok := runtime.Caller(offset)
	details := runtime.FuncForPC(pc)

	if !ok || details == nil {
		return ""
	}

	fullName := details.Name()
	parts := strings.Split(fullName, ".")

	// calls from anonymous functions carry a trailing "func1", "func2", ...
	if len(parts) > 0 && strings.HasPrefix(parts[len(parts)-1], "func") {
		parts = parts[:len(parts)-1]
	}

	if len(parts) == 0 {
		return ""
	}

	// a method, e.g. ["partred/reduce", "(*worker)", "run"]
	if len(parts) > 2 {
		typeName := cleanTypeName(parts[len(parts)-2])
		methodName := parts[len(parts)-1]
		return typeName + "." + methodName
	}

	return parts[len(parts)-1]
}

func cleanTypeName(name string) string {
	return strings.Trim(name, "(*)")
}
