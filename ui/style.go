package ui

const appCSS = `
:root { color-scheme: light dark; }
* { box-sizing: border-box; }
body {
  margin: 0;
  font-family: "Inter", system-ui, sans-serif;
  background: #f6f8fa;
  color: #1f2328;
}
.shell {
  display: grid;
  grid-template-columns: minmax(0, 1fr) 320px;
  gap: 1.5rem;
  max-width: 1100px;
  margin: 0 auto;
  padding: 2rem 1rem;
}
@media (max-width: 900px) { .shell { grid-template-columns: 1fr; } }
h1 { margin: 0 0 0.25rem; font-size: 1.6rem; }
h2 { margin: 0 0 0.75rem; font-size: 1.1rem; }
.muted { color: #656d76; }
.card {
  background: #fff;
  border: 1px solid #d0d7de;
  border-radius: 8px;
  padding: 1.25rem;
  margin: 1rem 0;
}
.card.error { border-color: #cf222e; }
.card.error h2 { color: #cf222e; }
label { display: block; margin: 0.75rem 0 0.25rem; font-weight: 600; }
select, input[type="text"] {
  width: 100%;
  padding: 0.5rem 0.6rem;
  border: 1px solid #d0d7de;
  border-radius: 6px;
  font-size: 0.95rem;
}
button {
  margin-top: 1rem;
  padding: 0.5rem 1rem;
  border-radius: 6px;
  border: 1px solid #d0d7de;
  background: #f6f8fa;
  cursor: pointer;
}
button.primary {
  background: #1f883d;
  border-color: #1f883d;
  color: #fff;
  font-weight: 600;
}
pre {
  background: #f6f8fa;
  border-radius: 6px;
  padding: 0.75rem;
  overflow-x: auto;
  white-space: pre-wrap;
}
.table-wrap { overflow-x: auto; }
table { border-collapse: collapse; width: 100%; font-size: 0.9rem; }
th, td { border: 1px solid #d0d7de; padding: 0.4rem 0.6rem; text-align: left; }
th { background: #f6f8fa; }
.sidebar ul, .sidebar ol { padding-left: 1.25rem; }
.sidebar li { margin: 0.25rem 0; }
`
