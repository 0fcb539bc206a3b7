// Package graphql renders typed Weaviate queries into GraphQL operation strings.
//
// The package has two layers. Clause types (Where, NearText, NearObject,
// NearVector, NearImage, Ask, BM25, Hybrid, Group, Sort) each render one
// argument fragment such as `where:{path:["name"],operator:"Equal",valueString:"x"}`.
// The builders Get and Aggregate compose a collection name, a field tree and
// any number of clauses into a single operation string, and Explore produces
// the query-string parameters for the REST explore endpoint.
//
// # Rendering rules
//
//   - All output is compact: no whitespace between tokens except the single
//     space that separates sibling fields in a selection set.
//   - Every string literal goes through one escaping function, so user input
//     containing quotes, backslashes or control characters stays a valid
//     GraphQL string.
//   - A clause missing its required payload renders to "" and is left out of
//     the argument list. Rendering never returns an error; validate input
//     before building if you need a hard failure.
//   - A builder without a collection name or without fields renders to "".
//
// # Basic Usage
//
//	q := graphql.NewGet("Pizza", graphql.Fields("name")...).
//	    WithWhere(graphql.NewWhere(graphql.Equal, "name").WithString("Hawaii")).
//	    WithLimit(10)
//
//	fmt.Println(q.Build())
//	// {Get{Pizza(where:{path:["name"],operator:"Equal",valueString:"Hawaii"},limit:10){name}}}
//
// # Clause ordering
//
// Get renders clauses in a fixed order (where, nearText, bm25, hybrid,
// nearObject, nearVector, group, ask, nearImage, limit, after, offset, sort)
// and drops a rendering that is byte-identical to one already emitted.
// Aggregate uses its own fixed order (groupBy, where, nearText, nearObject,
// nearVector, ask, nearImage, limit, objectLimit) and does not deduplicate.
//
// Neither builder enforces that only one near or search clause is set. When
// several are attached they are all rendered, and the server decides. Use
// Get.SearchClauseCount to reject such queries up front.
//
// # Thread Safety
//
// Builders are plain values. Build does not mutate the receiver, so a fully
// constructed builder can be rendered from multiple goroutines; concurrent
// calls to the With* methods on the same builder are not safe.
package graphql
