// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package shared holds the building blocks both button aggregates are composed from.

# Core Responsibility

  - Equality: [ValueObject] and [DeepEqual] give structural value semantics.
  - Identity: [Entity] carries id, timestamps, clock, and the owned event queue.
  - Events: [Event], [EventHeader], and [EventQueue] with pop-all draining.
  - Rules: the generic [Validator] contract and its [Result] envelope.
  - Delivery: [Publisher] implementations that ship drained events elsewhere.

Nothing in this package knows about buttons or contracts.
*/
package shared
