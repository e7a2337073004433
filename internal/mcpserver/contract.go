package mcpserver

// EntryFormatContract describes the on-disk Markdown grammar that LLM
// consumers should follow when reading or producing journal content.
const EntryFormatContract = `# lgg Entry Format Contract

The journal is plain Markdown: one file per day plus a flat todo list.

## Day files

Path: ` + "`" + `YYYY/MM/YYYY-MM-DD.md` + "`" + ` under the journal root.

` + "```" + `markdown
# Friday, 15 Aug 2025

## 08:03 - Morning coffee

With @ana at the cafe.

## 13:10 - Lunch
` + "```" + `

Rules:

1. The first line is ` + "`" + `# <date>` + "`" + ` in the configured date layout. A file
   without a valid header is skipped whole.
2. Every entry starts with ` + "`" + `## HH:MM - Title` + "`" + ` (24-hour clock). The body
   is everything until the next ` + "`" + `## ` + "`" + ` heading.
3. Tags are inline ` + "`" + `@words` + "`" + ` (letters, digits, ` + "`" + `_` + "`" + `, ` + "`" + `-` + "`" + `) in title or
   body. They are derived from the text on every read, never stored apart.
4. Entries within a file are ordered by time.

## Todo list

Path: ` + "`" + `todos.md` + "`" + ` under the todos root.

` + "```" + `markdown
# Todos

- [ ] Buy milk | 20/08/2025 07:00
      Whole, two bottles.
- [x] File taxes | 10/04/2025 09:00 | 12/04/2025 18:30
` + "```" + `

Rules:

1. The first line is a ` + "`" + `#` + "`" + ` header.
2. Items are ` + "`" + `- [ ]` + "`" + ` (pending) or ` + "`" + `- [x]` + "`" + ` (done) lines. After the
   title, ` + "`" + ` | ` + "`" + ` separates an optional due and an optional done
   timestamp in the configured datetime layout. A done timestamp without a
   due keeps the empty column: ` + "`" + `Title |  | <done>` + "`" + `.
3. Lines after an item that are not themselves items belong to its body.

## Date and time tokens

Tools taking date tokens accept: ` + "`" + `today` + "`" + `, ` + "`" + `yesterday` + "`" + `, ` + "`" + `tomorrow` + "`" + `,
weekday names (most recent occurrence), ` + "`" + `last week` + "`" + `, ` + "`" + `this week` + "`" + `,
` + "`" + `last month` + "`" + `, ` + "`" + `this month` + "`" + `, ` + "`" + `last year` + "`" + `, ` + "`" + `this year` + "`" + `, and
formatted dates in the configured input layouts. Time tokens accept
` + "`" + `morning` + "`" + `, ` + "`" + `noon` + "`" + `, ` + "`" + `evening` + "`" + `, ` + "`" + `night` + "`" + `, ` + "`" + `midnight` + "`" + `,
12-hour forms like ` + "`" + `6am` + "`" + ` or ` + "`" + `6:30pm` + "`" + `, 24-hour ` + "`" + `HH:MM` + "`" + `, and a
bare hour ` + "`" + `0` + "`" + `-` + "`" + `23` + "`" + `.
`
