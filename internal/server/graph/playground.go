package graph

import "net/http"

// GraphiQL page pointed at the /graphql endpoint, for interactive use
// during development.
var playgroundPage = []byte(`<!DOCTYPE html>
<html>
	<head>
		<title>linkboard</title>
		<link href="https://cdn.jsdelivr.net/npm/graphiql@3/graphiql.min.css" rel="stylesheet"/>
	</head>
	<body style="margin: 0;">
		<div id="graphiql" style="height: 100vh;"></div>
		<script src="https://cdn.jsdelivr.net/npm/react@18/umd/react.production.min.js"></script>
		<script src="https://cdn.jsdelivr.net/npm/react-dom@18/umd/react-dom.production.min.js"></script>
		<script src="https://cdn.jsdelivr.net/npm/graphiql@3/graphiql.min.js"></script>
		<script>
			const fetcher = GraphiQL.createFetcher({url: '/graphql'});
			ReactDOM.createRoot(document.getElementById('graphiql'))
				.render(React.createElement(GraphiQL, {fetcher: fetcher}));
		</script>
	</body>
</html>
`)

func servePlayground(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(playgroundPage)
}
