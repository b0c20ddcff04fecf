package constant

// AsciiArtLogo is the application's ASCII art banner.
const AsciiArtLogo = `
     _             _
 ___| |_ __ _  ___| | ____ _
/ __| __/ _` + "`" + ` |/ __| |/ / _` + "`" + ` |
\__ \ || (_| | (__|   < (_| |
|___/\__\__,_|\___|_|\_\__, |
                          |_|`
