package cssom

// UserAgentCSS is the default style sheet for HTML documents, a subset of
// the suggested style sheet of the HTML rendering section. It is meant to be
// added to a CSSOM with origin UserAgent.
const UserAgentCSS = `
area, base, basefont, datalist, head, link, meta, noembed,
noframes, param, rp, script, style, template, title, [hidden] {
    display: none;
}

address, article, aside, blockquote, body, center, dd, details,
dialog, dir, div, dl, dt, fieldset, figcaption, figure, footer,
form, h1, h2, h3, h4, h5, h6, header, hgroup, hr, html, legend,
listing, main, menu, nav, ol, p, plaintext, pre, search,
section, summary, ul, xmp {
    display: block;
}

li { display: list-item; }

h1 { font-size: 2em; margin-top: 0.67em; margin-bottom: 0.67em; }
h2 { font-size: 1.5em; margin-top: 0.83em; margin-bottom: 0.83em; }
h3 { font-size: 1.17em; margin-top: 1em; margin-bottom: 1em; }
h4 { margin-top: 1.33em; margin-bottom: 1.33em; }
h5 { font-size: 0.83em; margin-top: 1.67em; margin-bottom: 1.67em; }
h6 { font-size: 0.67em; margin-top: 2.33em; margin-bottom: 2.33em; }

p, blockquote, figure, listing, plaintext, pre, xmp {
    margin-top: 1em;
    margin-bottom: 1em;
}
blockquote, figure { margin-left: 40px; margin-right: 40px; }
ol, ul, menu { margin-top: 1em; margin-bottom: 1em; padding-left: 40px; }
pre, listing, plaintext, xmp { white-space: pre; }

body { margin: 8px; }

input, textarea, select, button {
    display: inline-block;
    border: 2px inset;
    padding: 1px 2px;
}
button { padding: 1px 6px; }
img, video, canvas, iframe, embed, object { display: inline-block; }

table { display: table; border-spacing: 2px; }
caption { display: table-caption; text-align: center; }
colgroup { display: table-column-group; }
col { display: table-column; }
thead { display: table-header-group; }
tbody { display: table-row-group; }
tfoot { display: table-footer-group; }
tr { display: table-row; }
td, th { display: table-cell; padding: 1px; }
th { text-align: center; }
`
