package parser

// Query source text ported from the tree-sitter MATLAB grammar queries used
// by the original watermarkhu/maxx implementation (src/maxx/treesitter.py).
// Each query targets node types and fields that are properties of the
// MATLAB grammar itself, so the query bodies carry over unchanged from the
// Python original; only the surrounding query/cursor/capture plumbing is
// rewritten in Go against smacker/go-tree-sitter.

const fileQuery = `(source_file .
    (comment)* @header .
    [
        (function_definition) @function
        (class_definition) @type
    ]?
)
`

const functionQuery = `(function_definition .
    ("function")
    (function_output .
        [
            (identifier) @output
            (multioutput_variable .
                [
                    (identifier) @output
                    _
                ]*
            )
        ]
    )?
    [
        ("set.") @setter
        ("get.") @getter
    ]?
    (identifier) @name
    (function_arguments .
        [
            (identifier) @input
            _
        ]*
    )?
    (comment)* @docstring
    (arguments_statement)* @arguments
)`

const argumentsQuery = `(arguments_statement .
    ("arguments")
    (attributes
        (identifier) @attributes
    )?
    (comment)?
    ("\n")?
    (property)+ @arguments
)`

const propertyQuery = `(property .
    [
        (identifier) @name
        (property_name
            (identifier) @options .
            (".") .
            (identifier) @name
        )
    ]
    (dimensions
        [
            (number) @dimensions
            (spread_operator) @dimensions
            _
        ]*
    )?
    [
        (identifier)
        (property_name)
    ]? @type
    (validation_functions)? @validators
    (default_value
        ("=")
        _+ @default
    )?
    (comment)* @comment
)`

const attributeQuery = `(attribute
    (identifier) @name
    (
        ("=")
        _+ @value
    )?
)`

const classQuery = `("classdef" .
    (attributes
        (attribute) @attributes
    )?
    (identifier) @name
    (superclasses
        (property_name) @bases
    )? .
    (comment)* @docstring
    ("\n")?
    [
        (comment)
        (methods) @methods
        (properties) @properties
        (enumeration) @enumeration
    ]*
)`

const methodsQuery = `("methods" .
    (attributes
        (attribute) @attributes
    )? .
    (
        ("\n")* .
        (function_definition)* @methods
    )*
)`

const propertiesQuery = `("properties" .
    (attributes
        (attribute) @attributes
    )? .
    (
        ("\n")* .
        (property)* @properties
    )*
)`

const enumerationsQuery = `("enumeration" .
    (
        ("\n")* .
        (enum
            (identifier) @content
            (
                ("(")
                (_)+ @content
                (")")
            )?
        ) .
        ("\n")* .
        (comment)* @content
    )*
)`
