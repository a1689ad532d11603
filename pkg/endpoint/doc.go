// Package endpoint holds the mapping contract shared by every endpoint
// group: how an operation becomes one HTTP verb, one path and one set of
// query or body parameters.
//
// A Descriptor names the operation, its verb, whether it targets the primary
// API ("{group}/...") or the mirror API ("mirrors/{group}/..."), its path
// template, where its parameters go and the shape of its response. Groups
// declare their descriptors once as package-level values and execute them
// through a Group:
//
//	var getBalance = endpoint.Descriptor{
//		Operation: "getBalance",
//		Method:    http.MethodGet,
//		API:       endpoint.Primary,
//		Template:  "{accountId}/balance",
//		Params:    endpoint.NoParams,
//		Shape:     endpoint.ShapeObject,
//	}
//
//	balance, err := endpoint.Invoke[endpoint.JSONObject](ctx, group, getBalance, endpoint.Args("0.0.1001"))
//
// Query structs are encoded with go-querystring, so fields tagged omitempty
// and left unset are not sent at all. Failures are logged on the group's zap
// logger and returned to the caller as the same error value; nothing is
// retried.
package endpoint
