// Package menu provides the menu item family for the ordering system:
// beverages, sides, sandwiches, burgers, and combo meals.
//
// The package includes:
//   - Closed enumerations for bread, protein, size, side type, drink flavor,
//     and add-ons, each rendering as its canonical uppercase identifier
//   - The five item kinds behind the MenuItem interface, each a pure pricing
//     function of its attributes with a canonical string rendering
//
// Key pricing rules:
//   - Quantity multiplies the single-unit price for every kind
//   - Beverage prices by size only; Side prices by type plus a size surcharge
//   - Sandwich prices by protein plus add-on surcharges; bread is cosmetic
//   - Burger uses its own single/double patty base, not the protein table
//   - Combo adds a flat fee to the base item's unit price; the bundled side
//     and drink are free
//
// Items are immutable value objects created through validating constructors,
// following Domain-Driven Design principles.
package menu
