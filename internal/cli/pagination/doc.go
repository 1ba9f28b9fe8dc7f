// Package pagination slices and sorts CLI list output.
//
//   - Params: --limit/--offset or --page/--page-size, validated together
//   - Meta: page metadata emitted alongside JSON lists
//   - RouteSorter: --sort field:order for route tables
package pagination
