package mdpanel

// ExampleDocument is the sample loaded by the panel's example action. It
// touches every construct the renderer supports.
const ExampleDocument = "# Example Document\n\n## Second Level\n\n" +
	"This is an example with **bold** and *italic* text.\n\n" +
	"### Lists\n- Item 1\n- Item 2\n  - Sub item\n  - Sub item\n\n" +
	"### Task List\n- [x] Finished task\n- [ ] Open task\n\n" +
	"### Code Block\n```javascript\nfunction hello() {\n  console.log(\"Hello World\");\n}\n```\n\n" +
	"### Table\n| Col 1 | Col 2 | Col 3 |\n|-----|-----|-----|\n| A   | B   | C   |\n| 1   | 2   | 3   |\n\n" +
	"### Quote\n> This is a quote\n> spanning lines\n\n" +
	"### Links and Images\n[GitHub](https://github.com)\n![Logo](https://github.com/favicon.ico)\n"
