package vanilla

import (
	"strings"
	"testing"
)

type user struct {
	name  string
	email string
	admin bool
}

func (user) Header() []string { return []string{"Name", "Email", "Role"} }

func (u user) Cell(index int) Cell {
	switch index {
	case 0:
		return Text(u.name)
	case 1:
		return HTML(`<a href="mailto:` + u.email + `" onclick="steal()">` + u.email + `</a>`)
	default:
		if u.admin {
			return HTML("<strong>admin</strong>")
		}
		return Text("member")
	}
}

func TestTable(t *testing.T) {
	r := newTestRenderer(t)
	items := []user{
		{name: "Ada <Lovelace>", email: "ada@example.com", admin: true},
		{name: "Grace", email: "grace@example.com"},
	}

	out, err := Table(r, TableConfig[user]{Classes: []string{"table", "table-striped"}}, items)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	assertContains(t, out,
		`<table class="table table-striped">`,
		"<th>Name</th><th>Email</th><th>Role</th>",
		"<td>Ada &lt;Lovelace&gt;</td>",
		`href="mailto:ada@example.com"`,
		"<td><strong>admin</strong></td>",
		"<td>member</td>",
	)
	assertNotContains(t, out, "onclick", "<div")
	if strings.Count(out, "<tr>") != 3 {
		t.Fatalf("expected header row plus two rows\n%s", out)
	}
}

func TestTable_WrapperAndActions(t *testing.T) {
	r := newTestRenderer(t)
	cfg := TableConfig[user]{
		WrapperClass: "table-responsive",
		HeaderAction: HTML(`<em>Actions</em><button onclick="x()">Add</button>`),
		LineAction: func(u user) Cell {
			return Text("edit " + u.name)
		},
	}

	out, err := Table(r, cfg, []user{{name: "Grace"}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	assertContains(t, out,
		`<div class="table-responsive">`,
		"<th><em>Actions</em>Add</th>",
		"<td>edit Grace</td>",
		"</div>",
	)
}

func TestTable_Empty(t *testing.T) {
	r := newTestRenderer(t)
	out, err := Table(r, TableConfig[user]{}, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	assertContains(t, out, "<th>Name</th>", "<tbody>")
	assertNotContains(t, out, "<td>")
}

type invoice struct {
	number   string
	currency string
}

func (i *invoice) Header() []string {
	currency := i.currency
	if currency == "" {
		currency = "EUR"
	}
	return []string{"Number", "Total (" + currency + ")"}
}

func (i *invoice) Cell(index int) Cell {
	if index == 0 {
		return Text(i.number)
	}
	return Text("0.00")
}

func TestTable_PointerRows(t *testing.T) {
	r := newTestRenderer(t)
	items := []*invoice{{number: "INV-1"}, {number: "INV-2", currency: "USD"}}

	out, err := Table(r, TableConfig[*invoice]{}, items)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	assertContains(t, out,
		"<th>Number</th><th>Total (EUR)</th>",
		"<td>INV-1</td>",
		"<td>INV-2</td>",
	)
}

func TestTable_ConfigHeaderOverridesRowHeader(t *testing.T) {
	r := newTestRenderer(t)
	cfg := TableConfig[*invoice]{Header: []string{"Invoice", "Total (USD)"}}

	out, err := Table(r, cfg, []*invoice{{number: "INV-3", currency: "USD"}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	assertContains(t, out, "<th>Invoice</th><th>Total (USD)</th>", "<td>INV-3</td>")
	assertNotContains(t, out, "<th>Number</th>")
}
