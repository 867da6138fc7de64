package app

// helpText is the About popup content, written in the markup dialect
// the popup renderer understands.
const helpText = `# About regexplore

This program provides a **simple** way to write a regular expression
and see what portions of text it will match.
It is meant as a tool to help you _learn_ regex.

# How to use

- enter a pattern into the top field
- toggle any of the g, i, m, s flags
- type or paste your text into the content box
- press Enter in the pattern field to find matches

The tool will highlight **all** matches.

# Keys

- Tab         cycle focus: pattern, flags, content
- Ctrl+R      find matches from anywhere
- F1          this help
- F2          sample pattern library
- F3          equivalent Go code for the current search
- F7 / F8     shrink / grow content padding
- Ctrl+C      quit

# Known bugs

Nothing yet ...`
