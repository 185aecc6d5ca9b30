/*
Package ledger owns each user's wallet balance and the transaction
history explaining every balance change.

A deposit raises the balance unconditionally; a withdrawal is rejected
when it exceeds the current balance, so the balance never goes
negative. Every mutation records a Transaction carrying the balance
before the entry (old_amount), the amount moved (new_amount) and the
resulting balance (total_amount).

The balance update and the ledger insert run inside a single database
transaction with the user row locked FOR UPDATE. The lock serializes
concurrent mutations against the same wallet, so two simultaneous
withdrawals cannot both observe a sufficient balance.

Administrative corrections (UpdateByID, UpdateByUser) first reverse the
original entry's effect on the balance and then apply the corrected
amounts, re-checking sufficiency in between. Repeated corrections
therefore never compound.
*/
package ledger
