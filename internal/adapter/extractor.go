package adapter

import (
	m "covmap.dev/pkg/covmap/internal/model"
)

const nestedSeparator = "::"

// ExtractRawMappings walks every file of report and collects the contexts of
// modules, classes and functions into three raw mappings.
//
// Nested classes are keyed "Outer::Inner" and their methods
// "Outer::Inner::method". Entries named "" inside functions or classes hold
// code outside any function or class; that code already belongs to the
// module entry and is skipped.
func ExtractRawMappings(report *m.Report) m.RawMappings {
	raw := m.RawMappings{
		Module:   m.RawMapping{},
		Class:    m.RawMapping{},
		Function: m.RawMapping{},
	}

	if report == nil {
		return raw
	}

	for filePath, file := range report.Files {
		raw.Module[m.ElementKey{File: filePath}] = contextsOf(file)

		for name, function := range file.Functions {
			if name == "" {
				continue
			}

			raw.Function[m.ElementKey{File: filePath, Element: name}] = contextsOf(function)
		}

		extractClasses(filePath, "", file.Classes, &raw)
	}

	return raw
}

func extractClasses(filePath, parent string, classes map[string]m.FileCoverage, raw *m.RawMappings) {
	for name, class := range classes {
		if name == "" {
			continue
		}

		classPath := name
		if parent != "" {
			classPath = parent + nestedSeparator + name
		}

		raw.Class[m.ElementKey{File: filePath, Element: classPath}] = contextsOf(class)

		extractClasses(filePath, classPath, class.Classes, raw)

		for methodName, method := range class.Functions {
			if methodName == "" {
				continue
			}

			methodPath := classPath + nestedSeparator + methodName
			raw.Function[m.ElementKey{File: filePath, Element: methodPath}] = contextsOf(method)
		}
	}
}

func contextsOf(coverage m.FileCoverage) map[string][]string {
	if coverage.Contexts == nil {
		return map[string][]string{}
	}

	return coverage.Contexts
}
