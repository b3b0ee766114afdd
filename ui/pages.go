package ui

import (
	"fmt"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"text2sql/database"
)

// pageState carries everything one render of the query page needs.
type pageState struct {
	Databases  []string
	SelectedDB string
	Question   string
	SQL        string
	Result     *database.QueryResult
	RunError   string
	Tables     []string
	MaxRows    int
}

var exampleQuestions = []string{
	"How many customers are in the database?",
	"What is the total revenue?",
	"Show top 5 products by sales",
}

func queryPage(state pageState) Node {
	return HTML(
		Lang("en"),
		Head(
			Meta(Charset("utf-8")),
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			TitleEl(Text("Text to SQL")),
			Link(Rel("icon"), Href("data:,")),
			StyleEl(Raw(appCSS)),
		),
		Body(
			Main(Class("shell"),
				Section(Class("main"),
					Header(
						H1(Text("Text to SQL")),
						P(Class("muted"), Text("Ask a question in plain English and run the generated query against the selected database.")),
					),
					queryForm(state),
					sqlCard(state),
					resultCard(state),
				),
				Aside(Class("sidebar"),
					infoCard(state),
				),
			),
		),
	)
}

func queryForm(state pageState) Node {
	options := make([]Node, 0, len(state.Databases))
	for _, name := range state.Databases {
		options = append(options, option(name, state.SelectedDB))
	}

	return Div(Class("card"),
		Form(
			Method("post"),
			Action("/run"),
			Label(For("database"), Text("Database schema")),
			Select(ID("database"), Name("database"), Group(options)),
			Label(For("question"), Text("Your question")),
			Input(
				ID("question"),
				Type("text"),
				Name("question"),
				Value(state.Question),
				Placeholder("Enter your natural language query"),
				Required(),
			),
			Button(Type("submit"), Class("primary"), Text("Generate SQL and Run")),
		),
	)
}

func option(value, selected string) Node {
	if value == selected {
		return Option(Value(value), Selected(), Text(value))
	}
	return Option(Value(value), Text(value))
}

func sqlCard(state pageState) Node {
	if state.SQL == "" {
		return nil
	}
	return Div(Class("card"),
		H2(Text("Generated SQL Query")),
		Pre(Code(Text(state.SQL))),
		Form(
			Method("post"),
			Action("/download.csv"),
			Input(Type("hidden"), Name("database"), Value(state.SelectedDB)),
			Input(Type("hidden"), Name("sql"), Value(state.SQL)),
			Button(Type("submit"), Class("secondary"), Text("Download CSV")),
		),
	)
}

func resultCard(state pageState) Node {
	if state.RunError != "" {
		return Div(Class("card error"),
			H2(Text("Error")),
			Pre(Text(state.RunError)),
			P(Class("muted"), Text("Try rephrasing your question or check that the database has tables.")),
		)
	}
	if state.Result == nil {
		return P(Class("muted"), Text("Run a query to see results."))
	}
	if state.Result.RowCount == 0 {
		return Div(Class("card"),
			H2(Text("Query Results")),
			P(Class("muted"), Text("No results found.")),
		)
	}

	headerCols := make([]Node, 0, len(state.Result.Columns))
	for _, col := range state.Result.Columns {
		headerCols = append(headerCols, Th(Text(col)))
	}

	displayRows := state.Result.Rows
	truncated := false
	if state.MaxRows > 0 && len(displayRows) > state.MaxRows {
		displayRows = displayRows[:state.MaxRows]
		truncated = true
	}

	rows := make([]Node, 0, len(displayRows))
	for i := range displayRows {
		cells := make([]Node, 0, len(displayRows[i]))
		for j := range displayRows[i] {
			cells = append(cells, Td(Text(cellString(displayRows[i][j]))))
		}
		rows = append(rows, Tr(Group(cells)))
	}

	meta := fmt.Sprintf("%d row(s)", state.Result.RowCount)
	if truncated {
		meta = fmt.Sprintf("%d row(s), showing first %d", state.Result.RowCount, state.MaxRows)
	}

	return Div(Class("card table-wrap"),
		H2(Text("Query Results")),
		P(Class("muted"), Text(meta)),
		Table(
			THead(Tr(Group(headerCols))),
			TBody(Group(rows)),
		),
	)
}

func infoCard(state pageState) Node {
	examples := make([]Node, 0, len(exampleQuestions))
	for _, q := range exampleQuestions {
		examples = append(examples, Li(Code(Text(q))))
	}

	var tablesNode Node
	switch {
	case len(state.Tables) > 0:
		items := make([]Node, 0, len(state.Tables))
		for _, table := range state.Tables {
			items = append(items, Li(Text(table)))
		}
		tablesNode = Div(
			P(Text(fmt.Sprintf("Available tables: %d", len(state.Tables)))),
			Ul(Group(items)),
		)
	default:
		tablesNode = P(Class("muted"), Text("Connect to a database to see tables."))
	}

	return Div(Class("card"),
		H2(Text("Information")),
		P(Strong(Text("How to use:"))),
		Ol(
			Li(Text("Select a database schema")),
			Li(Text("Enter your question in plain English")),
			Li(Text("Click 'Generate SQL and Run'")),
		),
		P(Strong(Text("Example queries:"))),
		Ul(Group(examples)),
		P(Strong(Text("Database info:"))),
		tablesNode,
	)
}

func cellString(value any) string {
	if value == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", value)
}
