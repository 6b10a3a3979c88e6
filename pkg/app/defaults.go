package app

// DefaultMenu is the cheatsheet shown when no menu file is configured.
const DefaultMenu = `# File

- New ` + "`⌘N`" + `
  - Document
  - Spreadsheet
  - From template
- Open ` + "`⌘O`" + `
- Make a copy
- Download
  - PDF document
  - Plain text
- Print ` + "`⌘P`" + `

# Edit

- Undo ` + "`⌘Z`" + `
- Redo ` + "`⇧⌘Z`" + `
- Cut ` + "`⌘X`" + `
- Copy ` + "`⌘C`" + `
- Paste ` + "`⌘V`" + `
- Find and replace ` + "`⇧⌘H`" + `

# View

- Mode
  - Editing
  - Suggesting
  - Viewing
- Show ruler
- Full screen

# Insert

- Image
  - Upload from computer
  - Search the web
- Table
- Link ` + "`⌘K`" + `
- Table of contents
  - Plain text
  - Blue links
- Section break

# Format

- Text
  - Bold ` + "`⌘B`" + `
  - Italic ` + "`⌘I`" + `
  - Underline ` + "`⌘U`" + `
  - Strikethrough ` + "`⇧⌘X`" + `
- Paragraph styles
  - Normal text ` + "`⌥⌘0`" + `
  - Heading 1 ` + "`⌥⌘1`" + `
  - Heading 2 ` + "`⌥⌘2`" + `
- Clear formatting ` + "`⌘\\`" + `

# Help

- Search the menus ` + "`⌥/`" + `
- Keyboard shortcuts ` + "`⌘/`" + `
`
