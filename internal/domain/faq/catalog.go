package faq

import "slices"

var catalog = []Item{
	{ID: 1, Question: "What is Next.js?", Answer: "Next.js is a React framework for building web applications."},
	{ID: 2, Question: "How does Tailwind CSS work?", Answer: "Tailwind CSS is a utility-first CSS framework for rapidly building custom designs."},
	{ID: 3, Question: "What is the purpose of getStaticProps?", Answer: "getStaticProps is used to fetch data at build time in Next.js."},
	{ID: 4, Question: "What is server-side rendering in Next.js?", Answer: "Server-side rendering (SSR) in Next.js is a technique where the initial content is generated on the server, which can improve performance and SEO."},
	{ID: 5, Question: "How do you create dynamic routes in Next.js?", Answer: "In Next.js, you can create dynamic routes by adding brackets to a page name, like [id].js. This allows you to handle variable paths."},
	{ID: 6, Question: "What are the benefits of using Typescript with React?", Answer: "TypeScript adds static typing to JavaScript, which can help catch errors early, improve code quality, and enhance developer productivity in React projects."},
	{ID: 7, Question: "How does Next.js handle API routes?", Answer: "Next.js allows you to create API routes by adding files inside the pages/api directory. These can be used to create serverless functions."},
	{ID: 8, Question: "What is the purpose of the _app.js file in Next.js?", Answer: "The _app.js file in Next.js is used to initialize pages. It can be used to add global styles, layout components, or manage state that persists between page changes."},
}

// Items returns a copy of the full FAQ dataset in display order.
func Items() []Item {
	return slices.Clone(catalog)
}

func containsID(items []Item, id int) bool {
	return slices.ContainsFunc(items, func(item Item) bool { return item.ID == id })
}
