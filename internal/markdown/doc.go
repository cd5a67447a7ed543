/*
Package markdown converts a small markdown dialect into an HTML node tree.

A document is split into blocks on blank lines. Each block is classified as a
heading, fenced code, quote, unordered list, ordered list or paragraph and
translated into a subtree. Text inside blocks other than code goes through the
span splitter, which recognizes **bold**, *italic*, `code`, ![images](url) and
[links](url). Nested inline formatting is not supported.

The resulting tree is rendered without escaping; callers that handle untrusted
input should sanitize the output.
*/
package markdown
