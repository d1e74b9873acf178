// Package lang parses stencil markup into an abstract syntax tree and a
// registry of reusable components.
//
// The parser is a hand-written recursive descent over a lexeme sequence with
// one lexeme of lookahead. Each nested body is extracted by counting braces
// and handed to a fresh [Parser], so a failure inside a body is recorded among
// that body's results and never aborts the enclosing element or component.
//
// # Syntax
//
//	Hello @user.name              text and a variable
//	/div.card#main(lang=en){...}  element with class, id, attribute and body
//	/a&tip(@t)(href="/x" "raw")   attached call, quoted value and key
//	&card(@title){/h1{@title}}    component definition
//	&card(@title)                 component call
//	$fmt(x=@value, y=&card)       function call
//	\@                            escaped symbol
//
// # Results
//
// [Parse] returns a [Document] whose results are either a [Node] or an
// [*Error]. Component definitions leave an empty [Text] placeholder in the
// results and are collected in [Document.Components]; a later definition
// replaces an earlier one with the same name.
//
// Errors are classified by [ErrorKind] and match the sentinel of their kind
// through [errors.Is]:
//
//	if errors.Is(doc.Err(), lang.ErrUnclosedOpenBraces) { ... }
//
// # Nested Components
//
// By default a component defined inside another body is registered only with
// the parser of that body and is not visible in the document registry.
// [WithSharedRegistry] makes every nested parser register into the outermost
// registry instead.
//
// # Inspection
//
// [Walk] iterates over nodes depth-first, [Select] filters them with an
// expr-lang predicate, and [Document.Format], [Document.FormatJSON] and
// [Document.FormatYAML] render a document.
package lang
